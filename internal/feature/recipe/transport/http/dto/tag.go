// Package dto defines data transfer objects for the recipe feature's HTTP transport layer.
package dto

import "recipe_backend/internal/feature/recipe/domain/entity"

// TagReq represents the request body for creating a tag.
// The owner is never part of the payload; it is stamped from the
// authenticated caller.
type TagReq struct {
	Name string `json:"name" binding:"required"`
}

// TagRes is the public representation of a tag.
type TagRes struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewTagRes maps a tag entity to its response shape.
func NewTagRes(t entity.Tag) TagRes {
	return TagRes{ID: t.ID, Name: t.Name}
}

// NewTagResList maps a slice of tag entities, always yielding a non-nil slice.
func NewTagResList(tags []entity.Tag) []TagRes {
	out := make([]TagRes, 0, len(tags))
	for _, t := range tags {
		out = append(out, NewTagRes(t))
	}
	return out
}

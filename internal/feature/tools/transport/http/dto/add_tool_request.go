// Package dto defines data transfer objects for the tools feature's HTTP transport layer.
package dto

// AddToolReq represents the request body for the POST /tools endpoint.
// Binding tags mirror the original field checks: non-empty owner and
// title, a plausible link, a 1-1024 character description and at least
// one tag.
type AddToolReq struct {
	UserID      string   `json:"userId" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Link        string   `json:"link" binding:"required,min=5"`
	Description string   `json:"description" binding:"required,min=1,max=1024"`
	Tags        []string `json:"tags" binding:"required,min=1"`
}

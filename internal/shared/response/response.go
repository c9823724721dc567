package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/JSON-FX/lgu-sso/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// PaginationMeta mirrors the list envelope's meta object. From/To are the
// 1-based inclusive index range of the current page and are null when the
// page is empty.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	From        *int  `json:"from"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	To          *int  `json:"to"`
	Total       int64 `json:"total"`
}

type PaginationLinks struct {
	First *string `json:"first"`
	Last  *string `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// NewPaginationMeta computes meta and links for a page holding count items.
func NewPaginationMeta(total int64, page, perPage, count int) (PaginationMeta, PaginationLinks) {
	lastPage := 1
	if perPage > 0 {
		lastPage = int((total + int64(perPage) - 1) / int64(perPage))
		if lastPage < 1 {
			lastPage = 1
		}
	}

	meta := PaginationMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
	if count > 0 {
		from := (page-1)*perPage + 1
		to := from + count - 1
		meta.From = &from
		meta.To = &to
	}

	pageLink := func(p int) *string {
		s := fmt.Sprintf("?page=%d", p)
		return &s
	}

	links := PaginationLinks{
		First: pageLink(1),
		Last:  pageLink(lastPage),
	}
	if page > 1 {
		links.Prev = pageLink(page - 1)
	}
	if page < lastPage {
		links.Next = pageLink(page + 1)
	}

	return meta, links
}

type listEnvelope struct {
	Data  any             `json:"data"`
	Meta  PaginationMeta  `json:"meta"`
	Links PaginationLinks `json:"links"`
}

type singleEnvelope struct {
	Data any `json:"data"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}

type errorEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func List(c *gin.Context, status int, data any, meta PaginationMeta, links PaginationLinks) {
	c.JSON(status, listEnvelope{Data: data, Meta: meta, Links: links})
}

func Single(c *gin.Context, status int, data any) {
	c.JSON(status, singleEnvelope{Data: data})
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, messageEnvelope{Message: message})
}

func Error(c *gin.Context, status int, message string, fields map[string][]string) {
	c.JSON(status, errorEnvelope{Message: message, Errors: fields})
}

// FromError writes the error envelope for a domain error. Unknown errors are
// masked as a generic 500 so internals never leak to the client.
func FromError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		Error(c, appErr.HTTPStatus, appErr.Message, appErr.Fields)
		return
	}
	Error(c, http.StatusInternalServerError, apperror.ErrInternal.Message, nil)
}

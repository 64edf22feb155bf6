// internal/models/pagination.go
package models

import "siteadmin/internal/paginator"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type Pagination struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"pageSize" form:"pageSize"`
}

func NewPagination(page, pageSize int) *Pagination {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return &Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func (p *Pagination) GetOffset() int {
	return (p.Page - 1) * p.PageSize
}

func (p *Pagination) GetLimit() int {
	return p.PageSize
}

// PageInfo is the "page" object of a list response.
type PageInfo struct {
	TotalCount int               `json:"totalCount"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	LastPage   int               `json:"lastPage"`
	Links      []paginator.Token `json:"links"`
	Previous   paginator.Step    `json:"previous"`
	Next       paginator.Step    `json:"next"`
}

// ListResponse is the envelope every list endpoint responds with.
type ListResponse[T any] struct {
	Data []T      `json:"data"`
	Page PageInfo `json:"page"`
}

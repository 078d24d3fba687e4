package model

import "time"

type CreateTodoDTO struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueAt       *time.Time `json:"dueAt"`
	IsCompleted *bool      `json:"isCompleted"`
	CategoryIDs []uint     `json:"categoryIds"`
}

type UpdateTodoDTO struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueAt       *time.Time `json:"dueAt"`
	IsCompleted *bool      `json:"isCompleted"`
	CategoryIDs []uint     `json:"categoryIds"`
}

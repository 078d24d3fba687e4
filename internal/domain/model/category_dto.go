package model

type CreateCategoryDTO struct {
	Name string `json:"name"`
}

type UpdateCategoryDTO struct {
	Name string `json:"name"`
}

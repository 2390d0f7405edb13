package model

import "encoding/json"

type BlogCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required,max=100"`
}

type Blog struct {
	ID            int      `json:"id"`
	Title         string   `json:"title" validate:"required,max=200"`
	Content       string   `json:"content" validate:"required"`
	ImageURL      string   `json:"image_url,omitempty" validate:"omitempty,url"`
	Categories    IDs      `json:"categories"`
	CategoryNames []string `json:"category_names,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
}

// IDs is a list of category ids. Anything other than a JSON array of
// numbers decodes as an empty list.
type IDs []int

func (ids *IDs) UnmarshalJSON(b []byte) error {
	var v []int
	if err := json.Unmarshal(b, &v); err != nil {
		*ids = IDs{}
		return nil
	}
	*ids = v
	return nil
}

func (ids IDs) Contains(id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

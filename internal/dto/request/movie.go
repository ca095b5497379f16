package request

// MovieCreateRequest carries the multipart form fields of a create call.
// Rating arrives as text and is parsed by the service; Image and
// ContentType come from the uploaded file part.
type MovieCreateRequest struct {
	Name        string `json:"movie_name" validate:"required"`
	Rating      string `json:"movie_rating" validate:"required"`
	Description string `json:"description" validate:"required"`
	Image       []byte `json:"-"`
	ContentType string `json:"-"`
}

// MovieUpdateRequest carries a partial update. Nil fields were not
// supplied; a non-empty Image always has its ContentType alongside.
type MovieUpdateRequest struct {
	Name        *string `json:"movie_name,omitempty"`
	Rating      *string `json:"movie_rating,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       []byte  `json:"-"`
	ContentType string  `json:"-"`
}

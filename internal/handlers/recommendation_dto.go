package handlers

type RecommendationRequest struct {
	UserID  uint `json:"user_id" validate:"required,min=1" example:"7"`
	MovieID int  `json:"movie_id" validate:"required,min=1" example:"550"`
}

package domain

import "time"

type Favorite struct {
	FavoriteID string    `json:"id" dynamodbav:"favorite_id"`
	UserID     string    `json:"userID" dynamodbav:"user_id"`
	MovieName  string    `json:"movieName" dynamodbav:"movie_name"`
	ImgURL     string    `json:"imgUrl" dynamodbav:"img_url"`
	MovieID    string    `json:"movieID" dynamodbav:"movie_id"`
	CreatedAt  time.Time `json:"created" dynamodbav:"created_at"`
}

// AddFavoriteRequest carries the client's userID for compatibility; the owner
// is always taken from the authenticated claims.
type AddFavoriteRequest struct {
	MovieName string `json:"movieName"`
	ImgURL    string `json:"imgUrl"`
	UserID    string `json:"userID"`
	MovieID   string `json:"movieID"`
}

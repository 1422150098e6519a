package model

type User struct {
	UserID            int    `json:"userId"`
	CognitoID         string `json:"cognitoId"`
	Username          string `json:"username"`
	ProfilePictureURL string `json:"profilePictureUrl"`
	TeamID            int    `json:"teamId"`
}

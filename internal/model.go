package internal

import "time"

type User struct {
	ID       string `json:"id" bson:"_id"`
	Username string `json:"username" bson:"username"`
}

type Exercise struct {
	ID          string    `json:"id" bson:"_id"`
	UserID      string    `json:"userId" bson:"userId"`
	Description string    `json:"description" bson:"description"`
	Duration    int       `json:"duration" bson:"duration"` // minutes
	Date        time.Time `json:"date" bson:"date"`         // calendar day, midnight UTC
}

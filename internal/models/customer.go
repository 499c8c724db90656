package models

type Customer struct {
  Id    string `bson:"id" json:"id"`
  Name  string `bson:"name" json:"name"`
  Email string `bson:"email" json:"email"`
}

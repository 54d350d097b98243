package model

type AuthorCount struct {
	Author string
	Lines  int
}

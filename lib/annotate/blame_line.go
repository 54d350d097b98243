package annotate

import "time"

type BlameLine struct {
	Hash       string
	AuthorName string
	Date       time.Time
	Text       string
}

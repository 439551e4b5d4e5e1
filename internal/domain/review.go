package domain

// Rating is 0 when the backend omitted it; a zero renders as five hollow stars.
type Review struct {
	UserID  string
	Rating  int
	Comment string
}

type User struct {
	ID   string
	Name string
}

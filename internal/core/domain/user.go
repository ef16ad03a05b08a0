package domain

// User is an operator of the system.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"` // unique
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // bcrypt, never serialized
	IsAdmin      bool   `json:"isAdmin"`
	IsActive     bool   `json:"isActive"`

	AuditFields
}

// SecurityQuestion is a catalog entry users may pick for password recovery.
type SecurityQuestion struct {
	QuestionID string `json:"questionID"`
	Text       string `json:"text"` // unique
}

// SecurityAnswer is a user's hashed answer to one security question.
// Answers are lowercased and trimmed before hashing; the plaintext is never stored.
type SecurityAnswer struct {
	UserID     string `json:"userID"`
	QuestionID string `json:"questionID"`
	AnswerHash string `json:"-"`
}

package user

// --- UseCase Inputs ---

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	Message string
}

type LoginOutput struct {
	Token string
}

type ProfileOutput struct {
	Email string
	Name  string
}

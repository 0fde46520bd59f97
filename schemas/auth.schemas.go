package schemas

// SignupSchema struct
type SignupSchema struct {
	Username string `json:"username" validate:"required,max=30"`
	Password string `json:"password" validate:"required,max=100"`
	Extra    string `json:"extra" validate:"max=1000"`
}

// SigninSchema struct
type SigninSchema struct {
	Username string `json:"username" validate:"required,max=30"`
	Password string `json:"password" validate:"required,max=100"`
}

// SignoutSchema struct
type SignoutSchema struct {
	SessionID string `json:"sessionId" validate:"required"`
}

// ActivitySchema struct
type ActivitySchema struct {
	SessionID  string `json:"sessionId" validate:"required"`
	NoActivity int64  `json:"noActivity" validate:"required,min=1"`
}

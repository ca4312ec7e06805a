package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserSub   CtxKey = "UserSub"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

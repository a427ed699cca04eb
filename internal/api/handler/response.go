package handler

const (
	StatusSuccess = "SUCCESS"
	StatusFail    = "FAIL"
)

// Messages shown to clients.
const (
	MsgAllGood            = "All good!"
	MsgSignedUp           = "You've signed up successfully"
	MsgLoggedIn           = "You've logged in successfully"
	MsgUserExists         = "User with the given email address already exists. Please login instead."
	MsgSignupInProgress   = "A signup for this email address is already in progress."
	MsgAdminSelfGrant     = "Admin rights cannot be requested at signup."
	MsgUserNotFound       = "User does not exist"
	MsgIncorrectPassword  = "Incorrect password"
	MsgLoginFirst         = "Please login first!"
	MsgNotAllowed         = "You're not allowed to access this page"
	MsgSomethingWentWrong = "Something went wrong"
)

// Response is the envelope of every JSON answer.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	JWToken string `json:"jwToken,omitempty"`
}

func Success(msg, token string) Response {
	return Response{Status: StatusSuccess, Message: msg, JWToken: token}
}

func Fail(msg string) Response {
	return Response{Status: StatusFail, Message: msg}
}

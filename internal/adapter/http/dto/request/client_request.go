package request

type ClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Company  string `json:"company"`
	Whatsapp string `json:"whatsapp" binding:"required"`
	Email    string `json:"email"`
}

package response

import "avflow/internal/domain/entities"

type ClientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Company  string `json:"company"`
	Whatsapp string `json:"whatsapp"`
	Email    string `json:"email"`
}

func FromClient(cl entities.Client) ClientResponse {
	return ClientResponse{
		ID:       cl.ID,
		Name:     cl.Name,
		Company:  cl.Company,
		Whatsapp: cl.Whatsapp,
		Email:    cl.Email,
	}
}

func FromClients(cls []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(cls))
	for _, cl := range cls {
		out = append(out, FromClient(cl))
	}
	return out
}

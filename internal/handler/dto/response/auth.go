package response

import "purchase-approval/internal/domain/identity"

type EmailValue struct {
	Value string `json:"value"`
}

// UserResponse mirrors the provider profile shape the frontend expects.
type UserResponse struct {
	DisplayName string       `json:"displayName"`
	Emails      []EmailValue `json:"emails"`
}

func FromIdentity(id identity.Identity) UserResponse {
	emails := make([]EmailValue, 0, len(id.Emails()))
	for _, e := range id.Emails() {
		emails = append(emails, EmailValue{Value: e})
	}
	return UserResponse{DisplayName: id.DisplayName(), Emails: emails}
}

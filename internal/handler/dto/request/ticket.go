package request

import "smartbus/internal/usecase/commands"

type RedeemRequest struct {
	Token    string `json:"token" binding:"required,max=64"`
	Location string `json:"location" binding:"max=128"`
}

func (r *RedeemRequest) ToInput(actor string) commands.RedeemInput {
	return commands.RedeemInput{
		Token:    r.Token,
		Actor:    actor,
		Location: r.Location,
	}
}

package request

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active blocked"`
}

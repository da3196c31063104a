package response

import (
	"shelfscan/internal/rfid"
)

type ScanOutcomeResponse struct {
	Status string `json:"status"`
	UID    string `json:"uid,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func FromOutcome(out rfid.Outcome) *ScanOutcomeResponse {
	return &ScanOutcomeResponse{
		Status: string(out.Status),
		UID:    out.UID,
		Reason: out.Reason,
	}
}

type RegisterClientResponse struct {
	ScanOutcomeResponse
	Client *ClientResponse `json:"client,omitempty"`
}

type RegisterBookResponse struct {
	ScanOutcomeResponse
	Book *BookResponse `json:"book,omitempty"`
}

type ReturnByScanResponse struct {
	ClientScan *ScanOutcomeResponse `json:"clientScan"`
	BookScan   *ScanOutcomeResponse `json:"bookScan,omitempty"`
	Borrow     *BorrowResponse      `json:"borrow,omitempty"`
}

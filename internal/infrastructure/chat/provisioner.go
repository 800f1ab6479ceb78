package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// HTTPChatProvisioner talks to the chat service. The participant endpoint is
// idempotent on the chat side, so repeated calls for the same room and user
// are safe.
type HTTPChatProvisioner struct {
	Address string
}

func NewHTTPChatProvisioner(address string) (*HTTPChatProvisioner, error) {
	return &HTTPChatProvisioner{
		Address: address,
	}, nil
}

type ensureParticipantRequest struct {
	RoomKey string `json:"room_key"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *HTTPChatProvisioner) EnsureParticipant(ctx context.Context, listingID, userID, role string) error {
	requestBodyBytes, err := json.Marshal(ensureParticipantRequest{
		RoomKey: listingID,
		UserID:  userID,
		Role:    role,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/rooms/participants", h.Address), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	response, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return nil
	}

	var errResp errorResponse
	if err := json.Unmarshal(responseBodyBytes, &errResp); err != nil {
		return fmt.Errorf("chat service returned %d", response.StatusCode)
	}
	return errors.New(errResp.Error)
}

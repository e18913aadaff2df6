package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/drakos74/free-perceptron/internal/train"
)

// MaxSteps limits the iterations a single step request can trigger.
const MaxSteps = 10000

// StepRequest is the payload of a step request.
type StepRequest struct {
	Steps int `json:"steps"`
}

// Perceptron creates the routes exposing the given session to a renderer.
func Perceptron(session *train.Session, debug bool) []Route {
	return []Route{
		{
			Action: Api,
			Path:   "frame",
			Method: GET,
			Exec: func(r *http.Request) ([]byte, int, error) {
				frame, err := session.Frame()
				if err != nil {
					return nil, http.StatusInternalServerError, err
				}
				return marshal(frame)
			},
		},
		{
			Action: Api,
			Path:   "step",
			Method: POST,
			Exec: func(r *http.Request) ([]byte, int, error) {
				request, err := stepRequest(r, debug)
				if err != nil {
					return nil, http.StatusBadRequest, err
				}
				if request.Steps < 1 || request.Steps > MaxSteps {
					return nil, http.StatusBadRequest, fmt.Errorf("steps must be within [1,%d] but was %d", MaxSteps, request.Steps)
				}
				var frame train.Frame
				for i := 0; i < request.Steps; i++ {
					frame, err = session.Step()
					if err != nil {
						return nil, http.StatusInternalServerError, err
					}
				}
				return marshal(frame)
			},
		},
		{
			Action: Api,
			Path:   "report",
			Method: GET,
			Exec: func(r *http.Request) ([]byte, int, error) {
				return marshal(session.Report())
			},
		},
	}
}

// stepRequest reads the number of steps from the 'n' query parameter,
// falling back to the json body and then to a single step.
func stepRequest(r *http.Request, debug bool) (StepRequest, error) {
	request := StepRequest{Steps: 1}
	if n := r.URL.Query().Get("n"); n != "" {
		steps, err := strconv.Atoi(n)
		if err != nil {
			return request, fmt.Errorf("could not parse steps '%s': %w", n, err)
		}
		request.Steps = steps
		return request, nil
	}
	if err := JsonRead(r, debug, &request); err != nil {
		return request, fmt.Errorf("could not read step request: %w", err)
	}
	return request, nil
}

func marshal(v interface{}) ([]byte, int, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("could not marshal response: %w", err)
	}
	return b, http.StatusOK, nil
}

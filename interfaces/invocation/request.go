package invocation

import (
	apperrors "github.com/JuanSebastianGarcia23/calzado/pkg/errors"
)

// Action is the internal operation an invocation resolves to
type Action string

const (
	ActionCreate Action = "create"
	ActionGet    Action = "get"
	ActionList   Action = "list"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Request is the normalized descriptor handed to the storage layer
type Request struct {
	Action  Action
	ID      string
	Payload map[string]any
}

// Client-facing messages
const (
	msgBodyRequired         = "Body requerido"
	msgOperationBody        = "body requerido"
	msgDeleteIDRequired     = "Se requiere id para eliminar"
	msgIDRequired           = "id requerido"
	msgUpdateIDRequired     = "id requerido para update"
	msgUpdateBodyRequired   = "body con campos a actualizar requerido"
	msgUnsupportedMethod    = "Método HTTP no soportado: "
	msgInvalidOperation     = "Operación inválida. Usa create, get, delete, list, update"
	msgUninterpretableEvent = "No se pudo interpretar el evento recibido"
)

// Descriptor implements Invocation
func (i HTTPInvocation) Descriptor() (Request, error) {
	switch i.Method {
	case "POST":
		if i.Body == nil {
			return Request{}, apperrors.NewValidationError(msgBodyRequired)
		}
		return Request{Action: ActionCreate, Payload: i.Body}, nil

	case "GET":
		if i.ID != "" {
			return Request{Action: ActionGet, ID: i.ID}, nil
		}
		return Request{Action: ActionList}, nil

	case "DELETE":
		if i.ID == "" {
			return Request{}, apperrors.NewValidationError(msgDeleteIDRequired)
		}
		return Request{Action: ActionDelete, ID: i.ID}, nil

	case "PUT", "PATCH":
		if i.ID == "" {
			return Request{}, apperrors.NewValidationError(msgUpdateIDRequired)
		}
		if i.Body == nil {
			return Request{}, apperrors.NewValidationError(msgUpdateBodyRequired)
		}
		return Request{Action: ActionUpdate, ID: i.ID, Payload: i.Body}, nil
	}

	return Request{}, apperrors.NewValidationError(msgUnsupportedMethod + i.Method)
}

// Descriptor implements Invocation
func (i OperationInvocation) Descriptor() (Request, error) {
	switch Action(i.Operation) {
	case ActionCreate:
		if i.Body == nil {
			return Request{}, apperrors.NewValidationError(msgOperationBody)
		}
		return Request{Action: ActionCreate, Payload: i.Body}, nil

	case ActionGet:
		if i.ID == "" {
			return Request{}, apperrors.NewValidationError(msgIDRequired)
		}
		return Request{Action: ActionGet, ID: i.ID}, nil

	case ActionList:
		return Request{Action: ActionList}, nil

	case ActionDelete:
		if i.ID == "" {
			return Request{}, apperrors.NewValidationError(msgIDRequired)
		}
		return Request{Action: ActionDelete, ID: i.ID}, nil

	case ActionUpdate:
		if i.ID == "" {
			return Request{}, apperrors.NewValidationError(msgUpdateIDRequired)
		}
		if i.Body == nil {
			return Request{}, apperrors.NewValidationError(msgUpdateBodyRequired)
		}
		return Request{Action: ActionUpdate, ID: i.ID, Payload: i.Body}, nil
	}

	return Request{}, apperrors.NewValidationError(msgInvalidOperation)
}

// Descriptor implements Invocation
func (UnrecognizedInvocation) Descriptor() (Request, error) {
	return Request{}, apperrors.NewValidationError(msgUninterpretableEvent)
}

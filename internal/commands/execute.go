package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Bulk    func(BulkArgs) (Result, error)
	Done    func(DoneArgs) (Result, error)
	Delete  func(DeleteArgs) (Result, error)
	Promote func(PromoteArgs) (Result, error)
	Demote  func(DemoteArgs) (Result, error)
	Draft   func(DraftArgs) (Result, error)
	Clear   func(ClearArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeBulk:
		if handlers.Bulk == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "bulk handler not configured"}
		}
		return handlers.Bulk(*cmd.Bulk)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "done handler not configured"}
		}
		return handlers.Done(*cmd.Done)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "delete handler not configured"}
		}
		return handlers.Delete(*cmd.Delete)
	case TypePromote:
		if handlers.Promote == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "promote handler not configured"}
		}
		return handlers.Promote(*cmd.Promote)
	case TypeDemote:
		if handlers.Demote == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "demote handler not configured"}
		}
		return handlers.Demote(*cmd.Demote)
	case TypeDraft:
		if handlers.Draft == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "draft handler not configured"}
		}
		return handlers.Draft(*cmd.Draft)
	case TypeClear:
		if handlers.Clear == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "clear handler not configured"}
		}
		return handlers.Clear(*cmd.Clear)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

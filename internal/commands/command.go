package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeBulk    Type = "bulk"
	TypeDone    Type = "done"
	TypeDelete  Type = "delete"
	TypePromote Type = "promote"
	TypeDemote  Type = "demote"
	TypeDraft   Type = "draft"
	TypeClear   Type = "clear"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Input string
}

type BulkArgs struct{}

type DoneArgs struct {
	ID string
}

type DeleteArgs struct {
	Kind string
	ID   string
}

type PromoteArgs struct {
	ID string
}

type DemoteArgs struct {
	ID string
}

type DraftArgs struct {
	Topic string
	Tone  string
}

type ClearArgs struct{}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Bulk    *BulkArgs
	Done    *DoneArgs
	Delete  *DeleteArgs
	Promote *PromoteArgs
	Demote  *DemoteArgs
	Draft   *DraftArgs
	Clear   *ClearArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeBulk:
		return Command{Type: TypeBulk, Raw: input, Bulk: &BulkArgs{}}, nil
	case TypeDone:
		return parseDone(input, args)
	case TypeDelete:
		return parseDelete(input, args)
	case TypePromote:
		return parsePromote(input, args)
	case TypeDemote:
		return parseDemote(input, args)
	case TypeDraft:
		return parseDraft(input, args)
	case TypeClear:
		return Command{Type: TypeClear, Raw: input, Clear: &ClearArgs{}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires text"}
	}
	input := strings.TrimSpace(strings.Join(args, " "))
	if input == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Input: input}}, nil
}

func parseDone(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "done requires a task id"}
	}
	return Command{Type: TypeDone, Raw: raw, Done: &DoneArgs{ID: args[0]}}, nil
}

func parseDelete(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "delete requires kind and id"}
	}
	kind := strings.ToLower(args[0])
	if kind != "task" && kind != "event" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("delete kind must be task or event, got %s", kind)}
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{Kind: kind, ID: args[1]}}, nil
}

func parsePromote(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "promote requires a task id"}
	}
	return Command{Type: TypePromote, Raw: raw, Promote: &PromoteArgs{ID: args[0]}}, nil
}

func parseDemote(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "demote requires an event id"}
	}
	return Command{Type: TypeDemote, Raw: raw, Demote: &DemoteArgs{ID: args[0]}}, nil
}

func parseDraft(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "draft requires a topic"}
	}
	tone := ""
	topicParts := make([]string, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(strings.ToLower(arg), "tone:") {
			tone = strings.TrimSpace(strings.TrimPrefix(arg, "tone:"))
			continue
		}
		topicParts = append(topicParts, arg)
	}
	topic := strings.TrimSpace(strings.Join(topicParts, " "))
	if topic == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "draft requires a topic"}
	}
	return Command{Type: TypeDraft, Raw: raw, Draft: &DraftArgs{Topic: topic, Tone: tone}}, nil
}

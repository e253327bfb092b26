package driven

import "github.com/ericfisherdev/grocerylist/internal/domain/model"

// CommandRecorder defines the driven port for counting list commands by
// outcome. Implementations must be safe for concurrent use.
type CommandRecorder interface {
	RecordCommand(command string, outcome model.Outcome)
}

package models

type Operation string

const (
	OpCreate           Operation = "create"
	OpAddFront         Operation = "add_front"
	OpPush             Operation = "push"
	OpAddBack          Operation = "add_back"
	OpEnqueue          Operation = "enqueue"
	OpRemoveFront      Operation = "remove_front"
	OpPop              Operation = "pop"
	OpDequeue          Operation = "dequeue"
	OpDeleteValue      Operation = "delete_value"
	OpDeleteAt         Operation = "delete_at"
	OpSortedInsert     Operation = "sorted_insert"
	OpReverse          Operation = "reverse"
	OpRemoveDuplicates Operation = "remove_duplicates"
	OpClone            Operation = "clone"
	OpContains         Operation = "contains"
	OpRender           Operation = "render"
	OpDrop             Operation = "drop"
)

var operations = map[Operation]struct{}{
	OpCreate: {}, OpAddFront: {}, OpPush: {}, OpAddBack: {}, OpEnqueue: {},
	OpRemoveFront: {}, OpPop: {}, OpDequeue: {}, OpDeleteValue: {}, OpDeleteAt: {},
	OpSortedInsert: {}, OpReverse: {}, OpRemoveDuplicates: {}, OpClone: {},
	OpContains: {}, OpRender: {}, OpDrop: {},
}

func (o Operation) Valid() bool {
	_, ok := operations[o]
	return ok
}

// NeedsValue reports whether the operation reads Command.Value.
func (o Operation) NeedsValue() bool {
	switch o {
	case OpAddFront, OpPush, OpAddBack, OpEnqueue, OpDeleteValue, OpSortedInsert, OpContains:
		return true
	}
	return false
}

// Inserts reports whether the operation creates the list when it is missing.
func (o Operation) Inserts() bool {
	switch o {
	case OpCreate, OpAddFront, OpPush, OpAddBack, OpEnqueue, OpSortedInsert:
		return true
	}
	return false
}

type ErrorKind string

const (
	ErrorKindEmptyCollection ErrorKind = "empty_collection"
	ErrorKindNotFound        ErrorKind = "not_found"
	ErrorKindIndexOutOfRange ErrorKind = "index_out_of_range"
	ErrorKindListNotFound    ErrorKind = "list_not_found"
	ErrorKindInvalidCommand  ErrorKind = "invalid_command"
	ErrorKindInternal        ErrorKind = "internal"
)

// Input message
type Command struct {
	ID     string    `json:"id,omitempty" yaml:"id,omitempty"`
	List   string    `json:"list" yaml:"list"`
	Op     Operation `json:"op" yaml:"op"`
	Value  *int      `json:"value,omitempty" yaml:"value,omitempty"`
	Index  *int      `json:"index,omitempty" yaml:"index,omitempty"`
	Target string    `json:"target,omitempty" yaml:"target,omitempty"`
}

// Outcome of one command, with the list state after it ran.
type Result struct {
	ID        string    `json:"id,omitempty"`
	List      string    `json:"list"`
	Op        Operation `json:"op"`
	Value     *int      `json:"value,omitempty" jsonschema:"value removed by remove_front, pop or dequeue"`
	Found     *bool     `json:"found,omitempty" jsonschema:"answer of a contains command"`
	Rendered  string    `json:"rendered" jsonschema:"list rendered head to tail"`
	Length    int       `json:"length"`
	Head      *int      `json:"head,omitempty"`
	Tail      *int      `json:"tail,omitempty"`
	Error     string    `json:"error,omitempty"`
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
}

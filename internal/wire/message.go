package wire

// Kind names the widget family a message describes.
type Kind string

const (
	KindMultiselect Kind = "multiselect"
	KindButtonGroup Kind = "button_group"
	KindNavigation  Kind = "navigation"
)

// ClickMode distinguishes single-select from multi-select button groups.
type ClickMode int

const (
	SingleSelect ClickMode = iota + 1
	MultiSelect
)

func (m ClickMode) String() string {
	switch m {
	case SingleSelect:
		return "single_select"
	case MultiSelect:
		return "multi_select"
	default:
		return "unknown"
	}
}

// SelectionVisualization controls how the client decorates a selection:
// only the selected option, or every option up to it (a rating bar).
type SelectionVisualization int

const (
	OnlySelected SelectionVisualization = iota + 1
	AllUpToSelected
)

func (v SelectionVisualization) String() string {
	switch v {
	case OnlySelected:
		return "only_selected"
	case AllUpToSelected:
		return "all_up_to_selected"
	default:
		return "unknown"
	}
}

// Option is one rendered option: the display label plus an optional
// alternate label shown while selected.
type Option struct {
	Label         string `json:"label"`
	SelectedLabel string `json:"selected_label,omitempty"`
}

// Message is the write-once per-run description of a widget's rendered
// state. Value and SetValue are populated only when the runtime must force
// the client to a new value; an unchanged widget keeps them empty so the
// client preserves its prior state.
type Message struct {
	ID            string   `json:"id"`
	Kind          Kind     `json:"kind"`
	Label         string   `json:"label,omitempty"`
	Options       []Option `json:"options"`
	Default       []int64  `json:"default"`
	Disabled      bool     `json:"disabled"`
	MaxSelections int64    `json:"max_selections,omitempty"`
	Placeholder   string   `json:"placeholder,omitempty"`
	Help          string   `json:"help,omitempty"`

	ClickMode              ClickMode              `json:"click_mode,omitempty"`
	SelectionVisualization SelectionVisualization `json:"selection_visualization,omitempty"`

	// Value and SetValue force a client-side state write. They are set only
	// when the registered value changed this run.
	Value    []int64 `json:"value,omitempty"`
	SetValue bool    `json:"set_value,omitempty"`
}

// NavEntry is one page in a navigation message.
type NavEntry struct {
	PageHash string `json:"page_hash"`
	Title    string `json:"title"`
	Icon     string `json:"icon,omitempty"`
}

// NavMessage describes the app's page table for the client sidebar.
type NavMessage struct {
	Entries []NavEntry `json:"entries"`
}

// EnvelopeType distinguishes envelope payloads.
type EnvelopeType int

const (
	// EnvelopeWidget carries a widget state message.
	EnvelopeWidget EnvelopeType = iota + 1
	// EnvelopeNav carries a navigation table message.
	EnvelopeNav
)

// Envelope wraps the message variants flowing through a run's outgoing
// queue, in script order.
type Envelope struct {
	Type   EnvelopeType
	Widget *Message
	Nav    *NavMessage
}

package shell

import "fmt"

// Command is a main-menu entry. Its numeric value is what the user types.
type Command int

const (
	CommandAdd Command = iota + 1
	CommandView
	CommandSearch
	CommandUpdate
	CommandDelete
	CommandSort
	CommandExit
)

// Commands lists the menu in display order.
var Commands = []Command{
	CommandAdd,
	CommandView,
	CommandSearch,
	CommandUpdate,
	CommandDelete,
	CommandSort,
	CommandExit,
}

var commandLabels = map[Command]string{
	CommandAdd:    "Add Contact",
	CommandView:   "View All Contacts",
	CommandSearch: "Search Contact",
	CommandUpdate: "Update Contact",
	CommandDelete: "Delete Contact",
	CommandSort:   "Sort Contacts by Name",
	CommandExit:   "Exit",
}

func (c Command) String() string {
	if l, ok := commandLabels[c]; ok {
		return l
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// SearchMode is a search sub-menu entry.
type SearchMode int

const (
	SearchByID SearchMode = iota + 1
	SearchByName
	SearchByPhone
	SearchByEmail
)

var searchLabels = map[SearchMode]string{
	SearchByID:    "ID",
	SearchByName:  "Name",
	SearchByPhone: "Phone",
	SearchByEmail: "Email",
}

func (m SearchMode) String() string {
	if l, ok := searchLabels[m]; ok {
		return l
	}
	return fmt.Sprintf("SearchMode(%d)", int(m))
}

package entities

// EditState is the state of the furniture edit machine
type EditState string

// Edit states
const (
	EditNavigate          EditState = "navigate"
	EditPlacing           EditState = "placing"
	EditSelectedFurniture EditState = "selected_furniture"
)

// EditSession is the local furniture placement and selection context.
// At most one of SelectedInventoryItemID and SelectedFurnitureID is set.
type EditSession struct {
	State    EditState
	EditMode bool

	SelectedInventoryItemID string
	SelectedFurnitureID     string
	PlacementRotation       int
	PlacementValid          bool
}

// NewEditSession starts in navigate
func NewEditSession() *EditSession {
	return &EditSession{State: EditNavigate}
}

// EnterPlacing selects an inventory item and drops any furniture selection
func (e *EditSession) EnterPlacing(inventoryItemID string) {
	e.State = EditPlacing
	e.SelectedInventoryItemID = inventoryItemID
	e.SelectedFurnitureID = ""
	e.PlacementRotation = 0
	e.PlacementValid = false
}

// EnterSelected selects a furniture and drops any inventory selection
func (e *EditSession) EnterSelected(furnitureID string) {
	e.State = EditSelectedFurniture
	e.SelectedFurnitureID = furnitureID
	e.SelectedInventoryItemID = ""
	e.PlacementRotation = 0
	e.PlacementValid = false
}

// ToNavigate clears every transient field. EditMode is a user toggle and
// survives.
func (e *EditSession) ToNavigate() {
	e.State = EditNavigate
	e.SelectedInventoryItemID = ""
	e.SelectedFurnitureID = ""
	e.PlacementRotation = 0
	e.PlacementValid = false
}

// View returns a read-only copy for renderers
func (e *EditSession) View() EditSession {
	return *e
}

package events

const (
	TransferAppliedName    = "transfer.applied"
	TerminationAppliedName = "termination.applied"
	AssetAssignedName      = "asset.assigned"
	ManagerChangedName     = "manager.changed"
)

// TransferAppliedEvent fires after a user has been moved to another
// department.
type TransferAppliedEvent struct {
	UserID         string
	UserName       string
	ToDepartment   string
	FromDepartment string
	ManagerID      string
}

func (e TransferAppliedEvent) Name() string { return TransferAppliedName }

// TerminationAppliedEvent fires after a user has been deactivated.
type TerminationAppliedEvent struct {
	UserID          string
	UserName        string
	ManagerID       string
	PromotedReports int64
}

func (e TerminationAppliedEvent) Name() string { return TerminationAppliedName }

// AssetAssignedEvent fires when an asset is handed to a user.
type AssetAssignedEvent struct {
	AssetID   int64
	AssetTag  string
	AssetName string
	UserID    string
}

func (e AssetAssignedEvent) Name() string { return AssetAssignedName }

// ManagerChangedEvent fires after an org-chart reparent has been
// persisted.
type ManagerChangedEvent struct {
	UserID       string
	UserName     string
	NewManagerID string
}

func (e ManagerChangedEvent) Name() string { return ManagerChangedName }

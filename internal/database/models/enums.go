package models

// EquipmentStatus is the operational state of a piece of equipment
type EquipmentStatus string

const (
	EquipmentStatusOperational EquipmentStatus = "operational"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
	EquipmentStatusOffline     EquipmentStatus = "offline"
	EquipmentStatusScrap       EquipmentStatus = "scrap"
)

// RequestType distinguishes reactive repairs from planned maintenance
type RequestType string

const (
	RequestTypeCorrective RequestType = "corrective"
	RequestTypePreventive RequestType = "preventive"
)

// RequestPriority defines the urgency of a maintenance request
type RequestPriority string

const (
	RequestPriorityLow      RequestPriority = "low"
	RequestPriorityMedium   RequestPriority = "medium"
	RequestPriorityHigh     RequestPriority = "high"
	RequestPriorityCritical RequestPriority = "critical"
)

// RequestStatus is the workflow state of a maintenance request.
// Each status is also a kanban column.
type RequestStatus string

const (
	RequestStatusNew        RequestStatus = "new"
	RequestStatusInProgress RequestStatus = "in-progress"
	RequestStatusRepaired   RequestStatus = "repaired"
	RequestStatusScrap      RequestStatus = "scrap"
)

// RequestStatuses lists every status in workflow order
var RequestStatuses = []RequestStatus{
	RequestStatusNew,
	RequestStatusInProgress,
	RequestStatusRepaired,
	RequestStatusScrap,
}

// IsValid checks if the EquipmentStatus is valid
func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentStatusOperational, EquipmentStatusMaintenance, EquipmentStatusOffline, EquipmentStatusScrap:
		return true
	}
	return false
}

// IsValid checks if the RequestType is valid
func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeCorrective, RequestTypePreventive:
		return true
	}
	return false
}

// IsValid checks if the RequestPriority is valid
func (p RequestPriority) IsValid() bool {
	switch p {
	case RequestPriorityLow, RequestPriorityMedium, RequestPriorityHigh, RequestPriorityCritical:
		return true
	}
	return false
}

// IsValid checks if the RequestStatus is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusNew, RequestStatusInProgress, RequestStatusRepaired, RequestStatusScrap:
		return true
	}
	return false
}

// IsOpen reports whether the request still needs work
func (s RequestStatus) IsOpen() bool {
	return s == RequestStatusNew || s == RequestStatusInProgress
}

// IsClosed reports whether the request reached a terminal workflow state
func (s RequestStatus) IsClosed() bool {
	return s == RequestStatusRepaired || s == RequestStatusScrap
}

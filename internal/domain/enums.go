package domain

// ActorKind identifies which side of the portal an identity belongs to.
// It doubles as the viewer kind on note view ledger entries.
type ActorKind string

const (
	ActorKindClient   ActorKind = "CLIENT"
	ActorKindEmployee ActorKind = "EMPLOYEE"
	ActorKindAdmin    ActorKind = "ADMIN"
)

func (k ActorKind) String() string { return string(k) }

func (k ActorKind) IsValid() bool {
	switch k {
	case ActorKindClient, ActorKindEmployee, ActorKindAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the actor works for the firm rather than being a client.
func (k ActorKind) IsStaff() bool {
	return k == ActorKindEmployee || k == ActorKindAdmin
}

// TaskKind is the fixed set of staff tasks that can be assigned against a
// client-month. At most one active assignment per task may exist for a period.
type TaskKind string

const (
	TaskBookkeeping  TaskKind = "BOOKKEEPING"
	TaskVATFiling    TaskKind = "VAT_FILING"
	TaskPayroll      TaskKind = "PAYROLL"
	TaskAnnualReport TaskKind = "ANNUAL_REPORT"
)

func (t TaskKind) String() string { return string(t) }

func (t TaskKind) IsValid() bool {
	switch t {
	case TaskBookkeeping, TaskVATFiling, TaskPayroll, TaskAnnualReport:
		return true
	}
	return false
}

// CategoryKind distinguishes the three standard document buckets from
// caller-named "other" buckets.
type CategoryKind string

const (
	CategorySales    CategoryKind = "SALES"
	CategoryPurchase CategoryKind = "PURCHASE"
	CategoryBank     CategoryKind = "BANK"
	CategoryOther    CategoryKind = "OTHER"
)

func (c CategoryKind) String() string { return string(c) }

func (c CategoryKind) IsValid() bool {
	switch c {
	case CategorySales, CategoryPurchase, CategoryBank, CategoryOther:
		return true
	}
	return false
}

// NoteLevel names the tree level a note hangs off.
type NoteLevel string

const (
	NoteLevelMonth    NoteLevel = "MONTH"
	NoteLevelCategory NoteLevel = "CATEGORY"
	NoteLevelFile     NoteLevel = "FILE"
)

func (l NoteLevel) String() string { return string(l) }

// Viewpoint returns the fixed viewer attribution for notes at this level:
// month and category notes carry deletion/change reasons addressed to the
// client, file notes carry staff feedback addressed to the employee side.
func (l NoteLevel) Viewpoint() ActorKind {
	if l == NoteLevelFile {
		return ActorKindEmployee
	}
	return ActorKindClient
}

// EntityType identifies the kind of domain entity (used in audit records).
type EntityType string

const (
	EntityTypeClient     EntityType = "CLIENT"
	EntityTypeEmployee   EntityType = "EMPLOYEE"
	EntityTypeAssignment EntityType = "ASSIGNMENT"
	EntityTypeFile       EntityType = "FILE"
	EntityTypeNote       EntityType = "NOTE"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeClient, EntityTypeEmployee, EntityTypeAssignment, EntityTypeFile, EntityTypeNote:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionUpload           AuditAction = "UPLOAD"
	AuditActionDeleteFile       AuditAction = "DELETE_FILE"
	AuditActionLock             AuditAction = "LOCK"
	AuditActionUnlock           AuditAction = "UNLOCK"
	AuditActionAssign           AuditAction = "ASSIGN"
	AuditActionRemoveAssignment AuditAction = "REMOVE_ASSIGNMENT"
	AuditActionAccountingDone   AuditAction = "ACCOUNTING_DONE"
	AuditActionDeactivate       AuditAction = "DEACTIVATE"
	AuditActionAddNote          AuditAction = "ADD_NOTE"
	AuditActionCreate           AuditAction = "CREATE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionUpload, AuditActionDeleteFile, AuditActionLock, AuditActionUnlock,
		AuditActionAssign, AuditActionRemoveAssignment, AuditActionAccountingDone,
		AuditActionDeactivate, AuditActionAddNote, AuditActionCreate:
		return true
	}
	return false
}

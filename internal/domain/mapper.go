package domain

import (
	"worklog/internal/repository/sqlite"
)

// EntryMapper handles conversion between domain and database Entry models.
type EntryMapper struct{}

// NewEntryMapper creates a new EntryMapper instance.
func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

// ToDatabase converts a domain Entry to a database Entry. Empty notes become NULL.
func (m *EntryMapper) ToDatabase(e Entry) sqlite.Entry {
	var notes *string
	if e.Notes != "" {
		n := e.Notes
		notes = &n
	}
	return sqlite.Entry{
		ID:            e.ID,
		UID:           e.UID,
		EmployeeName:  e.EmployeeName,
		CompletedTask: e.CompletedTask,
		DateStarted:   e.DateStarted,
		DateCompleted: e.DateCompleted,
		Notes:         notes,
		TimeTaken:     e.TimeTaken,
		TimeString:    e.TimeString,
	}
}

// FromDatabase converts a database Entry to a domain Entry.
func (m *EntryMapper) FromDatabase(dbEntry sqlite.Entry) Entry {
	var notes string
	if dbEntry.Notes != nil {
		notes = *dbEntry.Notes
	}
	return Entry{
		ID:            dbEntry.ID,
		UID:           dbEntry.UID,
		EmployeeName:  dbEntry.EmployeeName,
		CompletedTask: dbEntry.CompletedTask,
		DateStarted:   dbEntry.DateStarted,
		DateCompleted: dbEntry.DateCompleted,
		Notes:         notes,
		TimeTaken:     dbEntry.TimeTaken,
		TimeString:    dbEntry.TimeString,
	}
}

// FromDatabaseSlice converts database Entries to domain Entries, keeping their order.
func (m *EntryMapper) FromDatabaseSlice(dbEntries []*sqlite.Entry) []Entry {
	domainEntries := make([]Entry, 0, len(dbEntries))
	for _, entry := range dbEntries {
		if entry == nil {
			continue
		}
		domainEntries = append(domainEntries, m.FromDatabase(*entry))
	}
	return domainEntries
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Entry *EntryMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Entry: NewEntryMapper(),
	}
}

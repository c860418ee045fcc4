package dirsvc

// DirectoryObject is the read-only view common to all typed directory
// objects.
type DirectoryObject interface {
	Identity() string
	Field(name string) (string, bool)
	Fields() map[string]string
}

// Object is the base of every typed directory object. It wraps one Record
// and exposes identity and by-name field access.
type Object struct {
	record *Record
}

// Identity returns the object's id.
func (o *Object) Identity() string {
	return o.record.Identity()
}

// Field returns the named field's text, reporting absence explicitly.
func (o *Object) Field(name string) (string, bool) {
	return o.record.Field(name)
}

// Fields returns a copy of all named fields.
func (o *Object) Fields() map[string]string {
	return o.record.Fields()
}

func (o *Object) text(name string) string {
	value, _ := o.record.Field(name)

	return value
}

// User represents one user record.
type User struct {
	Object
}

// NewUser wraps a record as a User.
func NewUser(record *Record) *User {
	return &User{Object{record: record}}
}

func (u *User) Email() string     { return u.text("email") }
func (u *User) Username() string  { return u.text("username") }
func (u *User) FirstName() string { return u.text("firstname") }
func (u *User) LastName() string  { return u.text("lastname") }

// Role represents one role record.
type Role struct {
	Object
}

// NewRole wraps a record as a Role.
func NewRole(record *Record) *Role {
	return &Role{Object{record: record}}
}

func (r *Role) Name() string { return r.text("name") }

// Group represents one group record.
type Group struct {
	Object
}

// NewGroup wraps a record as a Group.
func NewGroup(record *Record) *Group {
	return &Group{Object{record: record}}
}

func (g *Group) Name() string { return g.text("name") }

// Event represents one event record.
type Event struct {
	Object
}

// NewEvent wraps a record as an Event.
func NewEvent(record *Record) *Event {
	return &Event{Object{record: record}}
}

func (e *Event) EventTypeID() string { return e.text("event-type-id") }
func (e *Event) CreatedAt() string   { return e.text("created-at") }

package models

// Workspace is the top-level container every other entity belongs to. It is
// created on the server only, so it never carries a GUID.
type Workspace struct {
	Base
	Name    string
	Premium bool // paid plan
}

func (w *Workspace) ModelName() string { return "workspace" }

func (w *Workspace) SetName(v string)  { set(&w.Base, &w.Name, v) }
func (w *Workspace) SetPremium(v bool) { set(&w.Base, &w.Premium, v) }

// Client is a customer that projects can be billed to.
type Client struct {
	Base
	Name string
	WID  uint64 // owning workspace
}

func (c *Client) ModelName() string { return "client" }

func (c *Client) SetName(v string) { set(&c.Base, &c.Name, v) }
func (c *Client) SetWID(v uint64)  { set(&c.Base, &c.WID, v) }

// Project groups time entries. Projects can be created offline, so they get a
// GUID before their first write.
type Project struct {
	Base
	Name     string
	WID      uint64 // owning workspace
	CID      uint64 // client remote id, 0 when the project has no client
	Color    string
	Active   bool
	Billable bool
}

func (p *Project) ModelName() string { return "project" }

func (p *Project) SetName(v string)   { set(&p.Base, &p.Name, v) }
func (p *Project) SetWID(v uint64)    { set(&p.Base, &p.WID, v) }
func (p *Project) SetCID(v uint64)    { set(&p.Base, &p.CID, v) }
func (p *Project) SetColor(v string)  { set(&p.Base, &p.Color, v) }
func (p *Project) SetActive(v bool)   { set(&p.Base, &p.Active, v) }
func (p *Project) SetBillable(v bool) { set(&p.Base, &p.Billable, v) }

// Task is a subdivision of a project.
type Task struct {
	Base
	Name string
	WID  uint64
	PID  uint64 // owning project remote id
}

func (t *Task) ModelName() string { return "task" }

func (t *Task) SetName(v string) { set(&t.Base, &t.Name, v) }
func (t *Task) SetWID(v uint64)  { set(&t.Base, &t.WID, v) }
func (t *Task) SetPID(v uint64)  { set(&t.Base, &t.PID, v) }

// Tag is a workspace-wide label. Time entries refer to tags by name.
type Tag struct {
	Base
	Name string
	WID  uint64
}

func (t *Tag) ModelName() string { return "tag" }

func (t *Tag) SetName(v string) { set(&t.Base, &t.Name, v) }
func (t *Tag) SetWID(v uint64)  { set(&t.Base, &t.WID, v) }

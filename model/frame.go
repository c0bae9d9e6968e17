package model

import "fmt"

type Column struct {
	Name   string
	Series Sequence
}

// Frame holds named columns in insertion order, like the columns of a data frame.
type Frame struct {
	Columns []Column
}

func NewFrame() *Frame {
	return &Frame{Columns: []Column{}}
}

// Set replaces the column with the same name or appends a new one.
func (f *Frame) Set(name string, series Sequence) {
	for i := range f.Columns {
		if f.Columns[i].Name == name {
			f.Columns[i].Series = series
			return
		}
	}
	f.Columns = append(f.Columns, Column{Name: name, Series: series})
}

func (f *Frame) Get(name string) (Sequence, bool) {
	if f == nil {
		return nil, false
	}
	for _, column := range f.Columns {
		if column.Name == name {
			return column.Series, true
		}
	}
	return nil, false
}

func (f *Frame) Names() []string {
	if f == nil {
		return nil
	}
	res := make([]string, 0, len(f.Columns))
	for _, column := range f.Columns {
		res = append(res, column.Name)
	}
	return res
}

func (f *Frame) DebugString() string {
	if f == nil {
		return "nil frame"
	}
	return fmt.Sprintf("columns: %+v", f.Names())
}

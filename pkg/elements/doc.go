// Package elements provides the concrete element kinds produced by the
// binding engine: labels, value fields, containers, list views, null
// guards, rich value fields and their editor windows.
//
// Elements carry no visual styling. A renderer inspects their type and
// state, and reports user input back through methods such as
// FieldElement.SetValueFromView, Button.Click or ListView.Add.
package elements

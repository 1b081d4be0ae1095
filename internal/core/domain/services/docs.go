// Package services provides domain services of the admin panel that do not
// belong to a single model type.
//
// The package includes:
//   - TableSorter: bubble sort of rendered table rows by one column with
//     alternating direction on repeated activation
//   - ProductColumns, ProductRows and ReorderProducts: the product table
//     layout and its conversion to and from sortable rows
package services

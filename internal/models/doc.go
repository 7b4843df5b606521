// Package models defines the data types of the attendance ledger: entry/exit
// events, employees, the daily presence summary, and the optional-field
// arguments of filtered reads and partial updates.
package models

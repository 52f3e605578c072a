// Package models defines the core domain records for the contractor ledger.
//
// # Records
//
//   - Project: a tracked contract/job with a budget and a store-maintained
//     cumulative spend
//   - Expense: a recorded outflow against a Project
//   - Bill: a vendor invoice against a Project with its own payable
//     lifecycle (pending/overdue/paid)
//   - Payment: an inbound receipt record against a Project; its lifecycle
//     is owned outside the domain store
//
// Expenses and Bills carry a ProjectName snapshot taken when the record is
// created. The snapshot is deliberately not kept in sync with later project
// renames; readers that need the current name must join on ProjectID.
//
// # Design Principles
//
//  1. Records reference their Project by ID string, never by pointer
//  2. IDs are opaque unique strings assigned by the store, never reused
//  3. Amounts are decimal values, dates are plain calendar dates
//  4. Input ("New*") types carry only the caller-suppliable fields; the
//     store owns everything derived (IDs, Spent, ProjectName, Bill status)
package models

// Package wealth provides the domain logic for reporting on a Wealthsimple
// brokerage profile: classifying accounts into registered-account types,
// aggregating net liquidation values per type, and attributing transfer
// transactions to contribution-period buckets.
//
// The core functionalities include:
//   - Account Classification: a pure, total mapping from an account
//     identifier and its owner list to one of a closed set of account types
//     (rrsp, tfsa, non-registered, cash, cash-joint, resp-joint, unknown).
//   - Summary Aggregation: filtering accounts to open CAD accounts with a
//     known net liquidation value and summing values per account type,
//     using exact decimal arithmetic.
//   - Transfer Reporting: turning a list of transactions into CSV report
//     lines with a contribution-period attribution label and an exact
//     decimal running total.
//
// This package serves as the foundational logic for the `wsctl` command-line
// tool. Everything here is pure and free of I/O; talking to the brokerage
// API is the job of the wealthsimple subpackage.
package wealth

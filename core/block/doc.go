// Package block defines the identifiers and construction contract shared by
// the block registry and every block controller implementation.
//
// A block type is named either by a NocID, the 32-bit identifier the FPGA
// reports for each block it hosts, or by a Key taken from an external block
// descriptor. Controllers are built by a Factory that receives the Args the
// caller assembled for one concrete block instance.
package block

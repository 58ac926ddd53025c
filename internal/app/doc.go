// Package app contains the core application logic. It loads a workbook,
// applies it to a spreadsheet and reports the result, decoupled from any
// specific entrypoint like a CLI.
package app

package main

import "github.com/sandboxtools/execcensor/internal/assoc"

func loadAssocTable(path string) (*assoc.Registry, error) {
	return assoc.LoadJSONC(path)
}

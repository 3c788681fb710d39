package reivm

type Closure struct {
	Fun *Function
	Env *Env
}

package appcontext

const (
	EnvCLI Env = iota
	EnvWorker
)

type Env int

func (e Env) String() string {
	switch e {
	case EnvWorker:
		return "worker"
	default:
		return "cli"
	}
}

type Ctx struct {
	Env Env
}

func Declare(env Env) Ctx {
	return Ctx{
		Env: env,
	}
}

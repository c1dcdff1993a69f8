package server

// Server объединяет HTTP-сервера отдельных сущностей: треки и вывод средств.
type Server struct {
	TrackServer
	WithdrawalServer
}

func NewServer(
	trackServer TrackServer,
	withdrawalServer WithdrawalServer,
) Server {
	return Server{
		TrackServer:      trackServer,
		WithdrawalServer: withdrawalServer,
	}
}

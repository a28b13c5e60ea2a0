package rabbitmq

// QueueConfig описывает очередь и ключ маршрутизации, по которому она привязана к exchange.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// Topology — exchange, его очереди и prefetch канала потребителя.
type Topology struct {
	Exchange string
	Prefetch int
	Queues   []QueueConfig
}

// WorkloadTopology возвращает топологию для событий нагрузки:
// основную очередь и очередь недоставленных сообщений (DLQ).
func WorkloadTopology(exchange string, prefetch int, main, dead QueueConfig) Topology {
	return Topology{
		Exchange: exchange,
		Prefetch: prefetch,
		Queues:   []QueueConfig{main, dead},
	}
}

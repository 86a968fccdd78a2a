package notify

import "context"

// NopClient заглушка клиента уведомлений
// Используется, когда отправка уведомлений выключена в конфигурации
type NopClient struct{}

// SendAppointmentEventWithGracefulDegradation молча пропускает событие
func (NopClient) SendAppointmentEventWithGracefulDegradation(_ context.Context, _ AppointmentEvent) error {
	return nil
}

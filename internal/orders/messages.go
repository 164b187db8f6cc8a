package orders

import (
	"context"
	"errors"
	"net"
)

// ErrorMessage maps any submission failure to a non-empty, user-facing
// Russian message. Known codes get fixed texts, unknown codes fall back
// to the error's own message, non-domain errors are pattern-matched.
func ErrorMessage(err error) string {
	if se := AsSubmissionError(err); se != nil {
		switch se.Code {
		case CodeNetworkError:
			return "Проблемы с подключением к интернету. Проверьте соединение и попробуйте снова."
		case CodeServerError:
			return "Сервер временно недоступен. Попробуйте оформить заказ через несколько минут."
		case CodeTimeout:
			return "Превышено время ожидания. Проверьте подключение и попробуйте снова."
		case CodeValidationError:
			return "Некорректные данные заказа. Проверьте введенную информацию."
		case CodeMaxRetriesExceeded:
			return "Не удалось оформить заказ после нескольких попыток. Попробуйте позже или обратитесь в службу поддержки."
		case CodeEmptyOrder:
			return "Корзина пуста. Добавьте товары для оформления заказа."
		case CodeMissingName:
			return "Укажите ваше имя для оформления заказа."
		case CodeMissingPhone:
			return "Укажите номер телефона для связи."
		case CodeMissingAddress:
			return "Укажите адрес доставки."
		case CodeMissingDeliveryTime:
			return "Выберите время доставки."
		case CodeInvalidTotal:
			return "Некорректная сумма заказа. Обновите страницу и попробуйте снова."
		default:
			return se.Message
		}
	}

	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) {
			return "Проблемы с подключением к серверу. Проверьте интернет-соединение."
		}
		if errors.Is(err, context.Canceled) {
			return "Запрос был отменен. Попробуйте снова."
		}
		return "Произошла техническая ошибка. Попробуйте позже или обратитесь в службу поддержки."
	}

	return "Произошла неизвестная ошибка при оформлении заказа. Попробуйте позже или обратитесь в службу поддержки."
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Restaurant contact details served on the contacts page.
const (
	RestaurantAddress = "ул. Коммунистическая д. 14, г. Кронштадт, Россия"
	RestaurantPhone   = "+7 (911) 819 36 72"
	RestaurantEmail   = "rest.vs@yandex.ru"
	OpeningHours      = "понедельник - воскресенье 12:00 - 23:00"
)

// Info page handlers

func (s *Server) GetAboutPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":    "Мыс доброй надежды",
		"headline": "От причалов Кронштадта - к вкусам континентов. Ваше гастрономическое плавание начинается здесь",
		"sections": []gin.H{
			{
				"title": "Эстетика в деталях",
				"text": "Элегантный вечерний стиль с белоснежными скатертями и уютной атмосферой. " +
					"Величественный «двухпалубный» ресторан на 188 посадочных мест станет еще больше летом, " +
					"когда практически в облаках на высоте птичьего полета откроется летняя терраса.",
			},
			{
				"title": "Меню ресторана",
				"text": "Российские региональные продукты в сочетании со средиземноморскими и азиатскими блюдами " +
					"и техниками приготовления легли в основу нового стиля MediterrAsian cuisine. " +
					"Сердце ресторана - Raw bar c ледником и аквариумом, где гости могут выбрать морепродукты на свой вкус.",
			},
		},
	})
}

func (s *Server) GetContactsPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"address": RestaurantAddress,
		"hours":   OpeningHours,
		"phone":   RestaurantPhone,
		"email":   RestaurantEmail,
		"coordinates": gin.H{
			"latitude":  59.9915,
			"longitude": 29.7664,
		},
	})
}

func (s *Server) GetEventsPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title": "Праздники!",
		"intro": "Дни рождения, свадьбы, корпоративы или просто душевные посиделки — мы создадим атмосферу, " +
			"где каждое событие превратится в тёплое воспоминание. Вкусные блюда, внимательный сервис и " +
			"домашняя забота — чтобы вы отдыхали, а мы позаботились обо всём остальном.",
		"events": []gin.H{
			{
				"title": "День Рождения!",
				"text": "Хотите идеальный День Рождения? Мы позаботимся обо всём: вкусная кухня, уютная атмосфера " +
					"и внимание к каждому гостю. Давайте устроим ваш праздник вместе!",
			},
			{
				"title": "Свадьба!",
				"text": "Каждая любовь — уникальна, и ваша свадьба должна быть такой же! Мы поможем воплотить ваши мечты: " +
					"от романтического ужина до большого праздника. Вкусные блюда, тёплая атмосфера и внимание " +
					"к каждой детали — чтобы ваш день стал по-настоящему сказочным.",
			},
		},
	})
}

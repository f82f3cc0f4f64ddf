package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/freshstack-dev/go-backend/internal/usecase"
	"github.com/freshstack-dev/go-backend/pkg/e"
	"github.com/freshstack-dev/go-backend/pkg/logger"
)

type ItemHandler struct {
	itemUsecase usecase.ItemUC
	logger      logger.Logger
}

func NewItemHandler(itemUsecase usecase.ItemUC, logger logger.Logger) *ItemHandler {
	return &ItemHandler{itemUsecase: itemUsecase, logger: logger}
}

// getAll
//
//	@Summary		Список товаров
//	@Description	Возвращает все товары, отсортированные по категории и имени
//	@Tags			groceries
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/groceries [get]
func (h *ItemHandler) getAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemUsecase.GetAll(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toItemResponseList(items))
}

// getByID
//
//	@Summary		Товар по идентификатору
//	@Tags			groceries
//	@Produce		json
//	@Param			id	path		int	true	"ID товара"
//	@Success		200	{object}	ItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/groceries/{id} [get]
func (h *ItemHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	item, err := h.itemUsecase.GetByID(r.Context(), id)
	if err != nil {
		if !errors.Is(err, e.ErrItemNotFound) {
			h.logger.Warnf("%s", err.Error())
		}
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toItemResponse(item))
}

// create
//
//	@Summary		Создание товара
//	@Description	Создаёт новый товар; id и created_at назначает хранилище
//	@Tags			groceries
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ItemRequest	true	"Товар"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/groceries [post]
func (h *ItemHandler) create(w http.ResponseWriter, r *http.Request) {
	req, err := parseItemBody(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	item, err := h.itemUsecase.Create(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toItemResponse(item))
}

// update
//
//	@Summary		Полное обновление товара
//	@Description	Заменяет все изменяемые поля; created_at не меняется
//	@Tags			groceries
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int			true	"ID товара"
//	@Param			request	body		ItemRequest	true	"Товар"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/groceries/{id} [put]
func (h *ItemHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := parseItemBody(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	item, err := h.itemUsecase.Update(r.Context(), id, req)
	if err != nil {
		if !errors.Is(err, e.ErrItemNotFound) {
			h.logger.Warnf("%s", err.Error())
		}
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toItemResponse(item))
}

// delete
//
//	@Summary		Удаление товара
//	@Description	Безвозвратно удаляет товар
//	@Tags			groceries
//	@Param			id	path	int	true	"ID товара"
//	@Success		204	"Удалено"
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/groceries/{id} [delete]
func (h *ItemHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	deleted, err := h.itemUsecase.Delete(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	if !deleted {
		WriteError(w, e.ErrItemNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// exists — лёгкая проба существования без тела ответа.
//
//	@Summary		Проверка существования товара
//	@Tags			groceries
//	@Param			id	path	int	true	"ID товара"
//	@Success		200	"Существует"
//	@Failure		404	"Не найден"
//	@Router			/groceries/{id} [head]
func (h *ItemHandler) exists(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	exists, err := h.itemUsecase.Exists(r.Context(), id)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !exists {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// adjustStock
//
//	@Summary		Корректировка остатка
//	@Description	Прибавляет delta к остатку; результат прижимается к нулю снизу
//	@Tags			groceries
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"ID товара"
//	@Param			request	body		AdjustStockRequest	true	"Дельта остатка"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/groceries/{id}/stock [patch]
func (h *ItemHandler) adjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var body AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Delta == nil {
		WriteError(w, e.ErrInvalidDelta)
		return
	}

	item, err := h.itemUsecase.AdjustStock(r.Context(), id, *body.Delta)
	if err != nil {
		if !errors.Is(err, e.ErrItemNotFound) {
			h.logger.Warnf("%s", err.Error())
		}
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toItemResponse(item))
}

package services

import (
	"errors"

	"github.com/amalakkad93/StarcoEat/entity"
	"github.com/amalakkad93/StarcoEat/pkg/apperr"
	"github.com/amalakkad93/StarcoEat/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	CartRepo     *repository.CartRepository
	PaymentRepo  *repository.PaymentRepository
	DeliveryRepo *repository.DeliveryRepository
	MenuRepo     *repository.MenuRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	paymentRepo *repository.PaymentRepository,
	deliveryRepo *repository.DeliveryRepository,
	menuRepo *repository.MenuRepository,
) *OrderService {
	return &OrderService{
		DB:           db,
		Repo:         repo,
		CartRepo:     cartRepo,
		PaymentRepo:  paymentRepo,
		DeliveryRepo: deliveryRepo,
		MenuRepo:     menuRepo,
	}
}

// CreateFromCart assembles a Pending order from the user's cart: one
// transaction computes the total from current menu prices, writes the
// payment and order with its item snapshot, and consumes the cart.
// The payment is marked Completed immediately — a stand-in for a real
// gateway callback.
func (s *OrderService) CreateFromCart(userID uint, gateway string) (*entity.Order, error) {
	if gateway == "" {
		gateway = entity.PaymentGatewayStripe
	}
	if !entity.ValidPaymentGateway(gateway) {
		return nil, apperr.New(apperr.Validation, "Invalid payment gateway: "+gateway)
	}

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetCartForUpdate(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.EmptyCart, "Shopping cart is empty.")
		}
		if err != nil {
			return err
		}

		cartItems, err := s.CartRepo.ListItems(tx, cart.ID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return apperr.New(apperr.EmptyCart, "Shopping cart is empty.")
		}

		var total float64
		for _, it := range cartItems {
			total += float64(it.Quantity) * it.MenuItem.Price
		}

		payment := entity.Payment{
			Gateway: gateway,
			Amount:  total,
			Status:  entity.PaymentStatusCompleted,
		}
		if err := s.PaymentRepo.Create(tx, &payment); err != nil {
			return err
		}

		order := entity.Order{
			UserID:     userID,
			TotalPrice: total,
			Status:     entity.OrderStatusPending,
			PaymentID:  &payment.ID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		orderItems := make([]entity.OrderItem, 0, len(cartItems))
		for _, it := range cartItems {
			orderItems = append(orderItems, entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
			})
		}
		if err := s.Repo.CreateOrderItems(tx, orderItems); err != nil {
			return err
		}

		// A concurrent checkout may have consumed the cart between our
		// read and this delete; losing the race aborts the whole
		// transaction so no half-order survives.
		cleared, err := s.CartRepo.ClearItems(tx, cart.ID)
		if err != nil {
			return err
		}
		if cleared != int64(len(cartItems)) {
			return apperr.New(apperr.EmptyCart, "Shopping cart is empty.")
		}

		order.Items = orderItems
		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListForUser returns the user's non-deleted orders, newest first.
func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListOrdersForUser(userID)
}

type OrderDetail struct {
	Order     *entity.Order
	Items     []entity.OrderItem
	MenuItems []entity.MenuItem
}

// Detail loads an order with its items and the menu items they
// reference. Ownership is enforced before anything else loads.
func (s *OrderService) Detail(userID, orderID uint) (*OrderDetail, error) {
	order, err := s.Repo.GetOrderAuthorized(orderID, userID)
	if err != nil {
		return nil, err
	}
	items, menuItems, err := s.itemsWithMenu(order.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: order, Items: items, MenuItems: menuItems}, nil
}

// Items returns an order's item rows plus their menu items.
func (s *OrderService) Items(userID, orderID uint) ([]entity.OrderItem, []entity.MenuItem, error) {
	order, err := s.Repo.GetOrderAuthorized(orderID, userID)
	if err != nil {
		return nil, nil, err
	}
	return s.itemsWithMenu(order.ID)
}

func (s *OrderService) itemsWithMenu(orderID uint) ([]entity.OrderItem, []entity.MenuItem, error) {
	items, err := s.Repo.ListOrderItems(orderID)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.MenuItemID)
	}
	menuItems, err := s.MenuRepo.ListByIDs(ids)
	if err != nil {
		return nil, nil, err
	}
	return items, menuItems, nil
}

package models

import "fmt"

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationAlert   NotificationType = "alert"
)

type NotificationCode string

type NotificationTpl struct {
	Type NotificationType
	Msg  string
}

var NotificationCodeMap = map[NotificationCode]NotificationTpl{
	NotifyJobPosted:            {Type: NotificationSuccess, Msg: "New job \"%v\" has been posted!"},
	NotifyApplicationSubmitted: {Type: NotificationSuccess, Msg: "Application for \"%v\" submitted successfully!"},
	NotifyApplicationStatus:    {Type: NotificationInfo, Msg: "Your application for \"%v\" is now %v."},
	NotifyApplicationUpdated:   {Type: NotificationSuccess, Msg: "Application status updated to %v."},
	NotifyInterviewScheduled:   {Type: NotificationInfo, Msg: "Interview for \"%v\" scheduled on %v (%v)."},
	NotifyInterviewCreated:     {Type: NotificationSuccess, Msg: "Interview with %v scheduled successfully!"},
	NotifyProfileUpdated:       {Type: NotificationSuccess, Msg: "Profile updated successfully!"},
	NotifyCompanyUpdated:       {Type: NotificationSuccess, Msg: "Company profile updated successfully!"},
	NotifyAlertCreated:         {Type: NotificationSuccess, Msg: "Job alert for \"%v\" created successfully!"},
	NotifyAlertDuplicate:       {Type: NotificationInfo, Msg: "You already have an alert for \"%v\"."},
	NotifyAlertRemoved:         {Type: NotificationInfo, Msg: "Job alert for \"%v\" removed."},
	NotifyAlertMatched:         {Type: NotificationAlert, Msg: "New Job Alert: \"%v\" matches your \"%v\" alert."},
}

const (
	NotifyJobPosted NotificationCode = "JobPosted"

	NotifyApplicationSubmitted NotificationCode = "ApplicationSubmitted"
	NotifyApplicationStatus    NotificationCode = "ApplicationStatus"
	NotifyApplicationUpdated   NotificationCode = "ApplicationUpdated"

	NotifyInterviewScheduled NotificationCode = "InterviewScheduled"
	NotifyInterviewCreated   NotificationCode = "InterviewCreated"

	NotifyProfileUpdated NotificationCode = "ProfileUpdated"
	NotifyCompanyUpdated NotificationCode = "CompanyUpdated"

	NotifyAlertCreated   NotificationCode = "AlertCreated"
	NotifyAlertDuplicate NotificationCode = "AlertDuplicate"
	NotifyAlertRemoved   NotificationCode = "AlertRemoved"
	NotifyAlertMatched   NotificationCode = "AlertMatched"
)

type NotificationData struct {
	Code NotificationCode
	Type NotificationType
	Msg  string
}

func getNotification(code NotificationCode, args ...interface{}) NotificationData {
	tpl := NotificationCodeMap[code]
	return NotificationData{
		Code: code,
		Type: tpl.Type,
		Msg:  fmt.Sprintf(tpl.Msg, args...),
	}
}

func GetNotifyJobPosted(jobTitle string) NotificationData {
	return getNotification(NotifyJobPosted, jobTitle)
}

func GetNotifyApplicationSubmitted(jobTitle string) NotificationData {
	return getNotification(NotifyApplicationSubmitted, jobTitle)
}

func GetNotifyApplicationStatus(jobTitle string, status ApplicationStatus) NotificationData {
	return getNotification(NotifyApplicationStatus, jobTitle, status)
}

func GetNotifyApplicationUpdated(status ApplicationStatus) NotificationData {
	return getNotification(NotifyApplicationUpdated, status)
}

func GetNotifyInterviewScheduled(jobTitle, dateTime string, interviewType InterviewType) NotificationData {
	return getNotification(NotifyInterviewScheduled, jobTitle, dateTime, interviewType)
}

func GetNotifyInterviewCreated(candidateName string) NotificationData {
	return getNotification(NotifyInterviewCreated, candidateName)
}

func GetNotifyProfileUpdated() NotificationData {
	return getNotification(NotifyProfileUpdated)
}

func GetNotifyCompanyUpdated() NotificationData {
	return getNotification(NotifyCompanyUpdated)
}

func GetNotifyAlertCreated(value string) NotificationData {
	return getNotification(NotifyAlertCreated, value)
}

func GetNotifyAlertDuplicate(value string) NotificationData {
	return getNotification(NotifyAlertDuplicate, value)
}

func GetNotifyAlertRemoved(value string) NotificationData {
	return getNotification(NotifyAlertRemoved, value)
}

func GetNotifyAlertMatched(jobTitle, alertValue string) NotificationData {
	return getNotification(NotifyAlertMatched, jobTitle, alertValue)
}
